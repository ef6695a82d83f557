package style

// Overlay flattens a priority-ordered list of mappings into one. Later layers
// win key by key. Nil layers are skipped. The result is nil when no layer
// contributes a key.
func Overlay[M ~map[K]V, K comparable, V any](layers ...M) M {
	var out M
	for _, layer := range layers {
		for k, v := range layer {
			if out == nil {
				out = make(M)
			}
			out[k] = v
		}
	}
	return out
}

// Merge folds params left to right into one parameter. Later params win for
// each field independently: plain properties and direct styles overwrite key
// by key, hover and focus merge recursively, and media maps merge via
// MergeMedia.
func Merge(params ...Param) Param {
	var (
		merged Param
		hovers []Param
		focus  []Param
		media  []Media
	)

	for _, p := range params {
		merged.Props = Overlay(merged.Props, p.Props)
		merged.Styles = Overlay(merged.Styles, p.Styles)
		if p.Hover != nil {
			hovers = append(hovers, *p.Hover)
		}
		if p.Focus != nil {
			focus = append(focus, *p.Focus)
		}
		if len(p.Media) > 0 {
			media = append(media, p.Media)
		}
	}

	if len(hovers) > 0 {
		h := Merge(hovers...)
		merged.Hover = &h
	}
	if len(focus) > 0 {
		f := Merge(focus...)
		merged.Focus = &f
	}
	merged.Media = MergeMedia(media...)

	return merged
}

// MergeMedia merges media maps. Keys keep the position of their first
// appearance; a key present in several maps has its params merged in input order.
func MergeMedia(maps ...Media) Media {
	var (
		out   Media
		index = make(map[string]int)
	)

	for _, m := range maps {
		for _, rule := range m {
			if i, ok := index[rule.Key]; ok {
				out[i].Param = Merge(out[i].Param, rule.Param)
				continue
			}
			index[rule.Key] = len(out)
			out = append(out, rule)
		}
	}

	return out
}
