package user

import "strings"

// Kind selects the container shape used to render a set of users.
type Kind int

// Supported container kinds. KindUnknown is returned for keys that do not
// match any of them.
const (
	KindUnknown Kind = iota
	KindList
	KindArray
	KindTable
	KindJagged
	KindDictionary
	KindQueue
	KindStack
	KindSet
	KindLinkedList
)

type kindInfo struct {
	key         string
	title       string
	description string
}

var kindInfos = map[Kind]kindInfo{
	KindList: {
		key:         "list",
		title:       "List",
		description: "Dynamic array that can grow in size. Fast access by index, good for frequent additions/removals at the end.",
	},
	KindArray: {
		key:         "array",
		title:       "Array",
		description: "Fixed-size collection. Fastest access by index but size cannot be changed after creation.",
	},
	KindTable: {
		key:         "table",
		title:       "Multi-dimensional Array",
		description: "Table-like structure (e.g., 2D arrays). Good for grid-based data with fixed dimensions.",
	},
	KindJagged: {
		key:         "jagged",
		title:       "Jagged Array",
		description: "Array of arrays where each element can be a different size. More flexible than multi-dimensional arrays.",
	},
	KindDictionary: {
		key:         "dictionary",
		title:       "Dictionary",
		description: "Key-value pairs. Extremely fast lookups by key (O(1)). Each key must be unique.",
	},
	KindQueue: {
		key:         "queue",
		title:       "Queue",
		description: "FIFO (First-In-First-Out) collection. Use when you need to process items in the order they were added.",
	},
	KindStack: {
		key:         "stack",
		title:       "Stack",
		description: "LIFO (Last-In-First-Out) collection. The last item added is the first one to be removed.",
	},
	KindSet: {
		key:         "set",
		title:       "Set",
		description: "Collection of unique elements. Very fast for checking if an item exists (O(1)). No duplicate items allowed.",
	},
	KindLinkedList: {
		key:         "linkedlist",
		title:       "Linked List",
		description: "Doubly-linked list. Fast insertions/deletions anywhere in the list, but slower index-based access.",
	},
}

// Kinds returns every supported kind in display order.
func Kinds() []Kind {
	return []Kind{
		KindList, KindArray, KindTable, KindJagged, KindDictionary,
		KindQueue, KindStack, KindSet, KindLinkedList,
	}
}

// ParseKind maps a stable key such as "stack" to its Kind.
// Unrecognized keys yield KindUnknown.
func ParseKind(key string) Kind {
	key = strings.ToLower(strings.TrimSpace(key))
	for _, k := range Kinds() {
		if kindInfos[k].key == key {
			return k
		}
	}
	return KindUnknown
}

// Key returns the stable selection key, or "" for KindUnknown.
func (k Kind) Key() string { return kindInfos[k].key }

// Title returns the display title.
func (k Kind) Title() string { return kindInfos[k].title }

// Description returns a one-line explanation of the container.
func (k Kind) Description() string { return kindInfos[k].description }

// Known reports whether k is one of the supported kinds.
func (k Kind) Known() bool {
	_, ok := kindInfos[k]
	return ok
}

func (k Kind) String() string {
	if !k.Known() {
		return "unknown"
	}
	return k.Key()
}
