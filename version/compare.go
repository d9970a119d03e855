// Package version provides unified mechanisms for application version tracking, update discovery, and compatibility validation.
package version

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Compare performs a semantic comparison between two version strings.
// Returns 1 if a > b, -1 if a < b, and 0 if equal.
func Compare(a, b string) (int, error) {
	parse := func(s string) (parts [3]int, err error) {
		_, err = fmt.Sscanf(strings.TrimPrefix(s, "v"), "%d.%d.%d", &parts[0], &parts[1], &parts[2])
		return
	}

	av, err := parse(a)
	if err != nil {
		return 0, err
	}

	bv, err := parse(b)
	if err != nil {
		return 0, err
	}

	for _, pair := range []lo.Tuple2[int, int]{
		{A: av[0], B: bv[0]},
		{A: av[1], B: bv[1]},
		{A: av[2], B: bv[2]},
	} {
		if pair.A > pair.B {
			return 1, nil
		}

		if pair.A < pair.B {
			return -1, nil
		}
	}

	return 0, nil
}
