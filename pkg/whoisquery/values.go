package whoisquery

// Values models the scalar-or-list ambiguity of WHOIS fields (dates, name
// servers, statuses): registries return one value or many, and the first
// one is authoritative either way.
type Values struct {
	items []string
}

func Single(value string) Values {
	if value == "" {
		return Values{}
	}

	return Values{items: []string{value}}
}

func Multiple(values []string) Values {
	if len(values) == 0 {
		return Values{}
	}

	return Values{items: values}
}

func (v Values) Present() bool {
	return len(v.items) > 0
}

// first-or-only accessor
func (v Values) First() (string, bool) {
	if len(v.items) == 0 {
		return "", false
	}

	return v.items[0], true
}

func (v Values) Count() int {
	return len(v.items)
}

func (v Values) Items() []string {
	return v.items
}
