package log

import "fmt"

// split turns variadic logger args into a message plus structured pairs.
// A leading string followed by an even number of args is treated as msg + key/values;
// anything else is rendered with fmt.Sprint.
func split(arg []any) (string, []any) {
	if len(arg) == 0 {
		return "", nil
	}
	msg, ok := arg[0].(string)
	if ok && len(arg)%2 == 1 {
		for i := 1; i < len(arg); i += 2 {
			if _, isKey := arg[i].(string); !isKey {
				return fmt.Sprint(arg...), nil
			}
		}
		return msg, arg[1:]
	}
	return fmt.Sprint(arg...), nil
}
