package domain

import (
	"github.com/memoriz2/greensupia-sub000/internal/errors"
)

// ErrIPNotTracked indicates the limiter holds no record for an IP.
var ErrIPNotTracked = errors.Wrap(errors.ErrNotFound, "ip is not tracked by the rate limiter")
