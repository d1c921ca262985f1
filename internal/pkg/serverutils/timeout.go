package serverutils

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// IsTimeout reports whether err came from an expired deadline, either ours or
// the driver's.
func IsTimeout(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, context.DeadlineExceeded) || pgconn.Timeout(err)
}
