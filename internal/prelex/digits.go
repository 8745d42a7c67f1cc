package prelex

import "strings"

// digitRun is the outcome of a digit sub-parse.
type digitRun struct {
	end    int    // byte offset right after the run
	count  int    // characters consumed, separators included
	digits string // normalized ASCII form: full-width mapped, commas dropped
}

func (r digitRun) ok() bool { return r.count > 0 }

// readInteger reads [0-9０-９]* without separators.
func readInteger(text []byte, pos int) digitRun {
	var sb strings.Builder
	run := digitRun{end: pos}
	for {
		d, w, ok := digitAt(text, run.end)
		if !ok {
			break
		}
		sb.WriteByte(d)
		run.end += w
		run.count++
	}
	run.digits = sb.String()
	return run
}

// readDecimal reads digits with thousands commas and at most one decimal
// point. A ',' or '.' is only taken when a digit follows it; otherwise it
// terminates the number. Commas are not accepted after the decimal point.
func readDecimal(text []byte, pos int) digitRun {
	var sb strings.Builder
	run := digitRun{end: pos}
	if _, _, ok := digitAt(text, pos); !ok {
		return run
	}
	seenPoint := false
	for run.end < len(text) {
		if d, w, ok := digitAt(text, run.end); ok {
			sb.WriteByte(d)
			run.end += w
			run.count++
			continue
		}
		sep := text[run.end]
		if sep != ',' && sep != '.' {
			break
		}
		if seenPoint {
			break
		}
		if _, _, ok := digitAt(text, run.end+1); !ok {
			break
		}
		if sep == '.' {
			seenPoint = true
			sb.WriteByte('.')
		}
		run.end++
		run.count++
	}
	run.digits = sb.String()
	return run
}
