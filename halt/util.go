package halt

import "fmt"

func fmtPct(x, y int) string {
	if y <= 0 {
		return "0/0"
	}
	return fmt.Sprintf("%d/%d: %d", x, y, 100*x/y)
}
