package interval

import "errors"

// ErrInvalidRange is the sentinel underlying New's precondition panic when
// start > end. It is not returned to callers — interval construction is a
// programmer precondition, not recoverable input validation — but naming it
// lets a recovered panic be matched with errors.Is, the same way the other
// packages' errors.go sentinels are matched.
var ErrInvalidRange = errors.New("interval: start must not exceed end")
