package models

import "net/url"

// ImageRefKind discriminates how a stored image reference is fetched.
type ImageRefKind int

const (
	// ImageRefExternal is a fully-qualified URL, served as-is.
	ImageRefExternal ImageRefKind = iota
	// ImageRefBlob is an opaque object-store key that must be resolved
	// to a fetchable URL at read time.
	ImageRefBlob
)

// ImageRef is the tagged form of one entry in Work.Images. Works persist
// raw strings; parsing happens once at read time so a blob key that
// merely looks URL-ish is never misclassified by a prefix check.
type ImageRef struct {
	Kind ImageRefKind
	Raw  string
}

// ParseImageRef classifies a stored reference. Only an absolute http or
// https URL counts as external; everything else is an object-store key.
func ParseImageRef(raw string) ImageRef {
	u, err := url.Parse(raw)
	if err == nil && u.IsAbs() && (u.Scheme == "http" || u.Scheme == "https") && u.Host != "" {
		return ImageRef{Kind: ImageRefExternal, Raw: raw}
	}
	return ImageRef{Kind: ImageRefBlob, Raw: raw}
}
