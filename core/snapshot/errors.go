package snapshot

import "errors"

var errNoCache = errors.New("snapshot cache not configured")
