package target

// entryList collects entries in first-seen order. A repeated key keeps its
// position and takes the later value.
type entryList struct {
	entries []Entry
	index   map[string]int
}

func newEntryList() *entryList {
	return &entryList{index: make(map[string]int)}
}

func (l *entryList) add(e Entry) {
	if i, ok := l.index[e.Key]; ok {
		l.entries[i] = e
		return
	}
	l.index[e.Key] = len(l.entries)
	l.entries = append(l.entries, e)
}

func (l *entryList) list() []Entry {
	if len(l.entries) == 0 {
		return []Entry{}
	}
	return l.entries
}
