package encode

type EncodeOption func(*EncState)

// Canonical sorts clauses and frames into canonical order before
// writing. The input document is not modified.
func Canonical(v bool) EncodeOption {
	return func(es *EncState) { es.canonical = v }
}

// EncodeComments controls whether trailing `!` comments are written.
// They are written by default.
func EncodeComments(v bool) EncodeOption {
	return func(es *EncState) { es.comments = v }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
