package softraster

import (
	"errors"
	"fmt"
)

var errNilImage = errors.New("softraster: nil image")

func errInvalidSize(w, h int) error {
	return fmt.Errorf("softraster: invalid surface size %dx%d", w, h)
}
