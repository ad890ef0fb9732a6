package model

// Meta holds extension data which has no place in the canonical fields,
// like podcast or media platform metadata.
type Meta map[string]any

// Set stores value under key, unless value is empty. It allocates the map on
// first use and returns it.
func (self Meta) Set(key string, value any) Meta {
	if isEmpty(value) {
		return self
	}
	if self == nil {
		self = make(Meta)
	}
	self[key] = value
	return self
}

// String returns the value of key, if it's a string.
func (self Meta) String(key string) string {
	s, _ := self[key].(string)
	return s
}

func isEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case []string:
		return len(v) == 0
	case []any:
		return len(v) == 0
	case map[string]any:
		return len(v) == 0
	case map[string]string:
		return len(v) == 0
	case Meta:
		return len(v) == 0
	}
	return false
}
