package extract

import (
	"errors"
)

var (
	ErrEntityMissing    = errors.New("entity role missing from common rpc fns")
	ErrForCreateMissing = errors.New("for create role missing from common rpc fns")
	ErrForUpdateMissing = errors.New("for update role missing from common rpc fns")
	ErrFilterMissing    = errors.New("filter role missing from common rpc fns")
	ErrDuplicateEntity  = errors.New("entity tag declared by more than one handler file")
)
