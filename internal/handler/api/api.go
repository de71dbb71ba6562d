package api

import (
	"samhotel-api/internal/infra"
)

func isNotFound(err error) bool {
	return infra.IsKind(err, infra.NotFoundError)
}
