package http

import (
	"laundry/internal/core/domain/model/actor"
	"laundry/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// actorFromRequest reads the acting user from the identity headers set by the
// authenticating proxy.
func actorFromRequest(ctx echo.Context) (actor.Actor, error) {
	var rawID, rawRole string

	headerOptions := runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationHeader, Required: true}
	if err := runtime.BindStyledParameterWithOptions("simple", headerActorID,
		ctx.Request().Header.Get(headerActorID), &rawID, headerOptions); err != nil {
		return actor.Actor{}, err
	}
	if err := runtime.BindStyledParameterWithOptions("simple", headerActorRole,
		ctx.Request().Header.Get(headerActorRole), &rawRole, headerOptions); err != nil {
		return actor.Actor{}, err
	}

	id, err := kernel.UUIDFromString(rawID)
	if err != nil {
		return actor.Actor{}, err
	}
	role, err := actor.ParseRole(rawRole)
	if err != nil {
		return actor.Actor{}, err
	}

	return actor.NewActor(id, role)
}

func orderIDParam(ctx echo.Context) (kernel.UUID, error) {
	var rawID string
	if err := runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &rawID,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Required: true}); err != nil {
		return kernel.UUID{}, err
	}
	return kernel.UUIDFromString(rawID)
}
