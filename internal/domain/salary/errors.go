package salary

import "errors"

var ErrSnapshotNotFound = errors.New("salary snapshot not found")
