package expander

import "fmt"

func beginMarker(display string) string {
	return fmt.Sprintf("// ===== BEGIN %s =====\n", display)
}

func endMarker(display string) string {
	return fmt.Sprintf("// ===== END %s =====\n", display)
}

func skippedMarker(display string) string {
	return fmt.Sprintf("// [skipped duplicated include] %s\n", display)
}
