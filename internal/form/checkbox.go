package form

import (
	"fmt"
	"strings"
)

// Checkbox is a boolean form field. Browsers send "y" or "on" for a
// ticked box and omit the field otherwise, which strconv.ParseBool
// does not understand.
type Checkbox bool

// UnmarshalParam implements echo.BindUnmarshaler.
func (c *Checkbox) UnmarshalParam(src string) error {
	switch strings.ToLower(strings.TrimSpace(src)) {
	case "y", "yes", "on", "true", "1":
		*c = true
	case "", "n", "no", "off", "false", "0":
		*c = false
	default:
		return fmt.Errorf("invalid checkbox value %q", src)
	}
	return nil
}
