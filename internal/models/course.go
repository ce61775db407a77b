package models

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/checkmygrade/internal/common"
)

// Course is one row of the course store. Description is optional.
type Course struct {
	ID          string
	Name        string
	Credits     int
	Description string
}

func (c Course) Validate() error {
	if strings.TrimSpace(c.ID) == "" {
		return fmt.Errorf("%w: course id is required", common.ErrorInvalidInput)
	}
	if c.Credits < 0 {
		return fmt.Errorf("%w: credits must not be negative", common.ErrorInvalidInput)
	}
	return nil
}

type CoursePatch struct {
	Name        string
	Credits     *int
	Description string
}

func (p CoursePatch) Apply(c Course) Course {
	c.Name = keep(c.Name, p.Name)
	if p.Credits != nil {
		c.Credits = *p.Credits
	}
	c.Description = keep(c.Description, p.Description)
	return c
}

// ParseCredits converts text to a non-negative credit count.
func ParseCredits(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: credits %q is not a non-negative whole number", common.ErrorInvalidInput, s)
	}
	return n, nil
}
