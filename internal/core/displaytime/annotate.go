package displaytime

// point-in-time keys that gain a "<key>_display" sibling
var pointKeys = []string{"sunrise", "sunset", "moonrise", "moonset"}

// Annotate returns a deep copy of a decoded JSON tree in which every mapping
// carrying string "start" and "end" fields also has start_display, end_display
// and range_label, and every string sunrise/sunset/moonrise/moonset has a
// "_display" sibling. The input is never modified
func Annotate(tree any) any {
	switch v := tree.(type) {
	case map[string]any:
		out := make(map[string]any, len(v)+3)
		for k, child := range v {
			out[k] = Annotate(child)
		}
		start, okS := v["start"].(string)
		end, okE := v["end"].(string)
		if okS && okE {
			dw := Window{Start: start, End: end}.Display()
			out["start_display"] = dw.StartDisplay
			out["end_display"] = dw.EndDisplay
			out["range_label"] = dw.RangeLabel
		}
		for _, k := range pointKeys {
			if s, ok := v[k].(string); ok {
				out[k+"_display"] = Normalize(s)
			}
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, child := range v {
			out[i] = Annotate(child)
		}
		return out
	default:
		return v
	}
}

// AnnotatePayload is Annotate for a top level mapping
func AnnotatePayload(payload map[string]any) map[string]any {
	if payload == nil {
		return nil
	}
	return Annotate(payload).(map[string]any)
}
