// Package render turns a list of users into a text report shaped by one of
// the supported container kinds.
package render

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	domain "user-container-demo/internal/domain/user"
	"user-container-demo/pkg/datastruct"
)

// NoUsersMessage is the whole report when there is nothing to render.
const NoUsersMessage = "No users found in the database."

// Render builds the report for users as seen through kind.
// An empty input always yields NoUsersMessage; an unknown kind yields "".
func Render(users []domain.User, kind domain.Kind) string {
	if len(users) == 0 {
		return NoUsersMessage
	}

	var b strings.Builder
	switch kind {
	case domain.KindList:
		renderList(&b, users)
	case domain.KindArray:
		renderArray(&b, users)
	case domain.KindTable:
		renderTable(&b, users)
	case domain.KindJagged:
		renderJagged(&b, users)
	case domain.KindDictionary:
		renderDictionary(&b, users)
	case domain.KindQueue:
		renderQueue(&b, users)
	case domain.KindStack:
		renderStack(&b, users)
	case domain.KindSet:
		renderSet(&b, users)
	case domain.KindLinkedList:
		renderLinkedList(&b, users)
	}
	return b.String()
}

func header(b *strings.Builder, kind domain.Kind, qualifier string) {
	if qualifier != "" {
		fmt.Fprintf(b, "=== %s (%s) ===\n", kind.Title(), qualifier)
		return
	}
	fmt.Fprintf(b, "=== %s ===\n", kind.Title())
}

func renderList(b *strings.Builder, users []domain.User) {
	list := slices.Clone(users)

	header(b, domain.KindList, "")
	for _, u := range list {
		fmt.Fprintf(b, "- %s\n", u)
	}
}

func renderArray(b *strings.Builder, users []domain.User) {
	arr := make([]domain.User, len(users))
	copy(arr, users)

	header(b, domain.KindArray, "")
	for i := range arr {
		fmt.Fprintf(b, "[%d]: %s\n", i, arr[i])
	}
}

func renderTable(b *strings.Builder, users []domain.User) {
	table := make([][2]any, len(users))
	for i, u := range users {
		table[i] = [2]any{u.ID, u}
	}

	header(b, domain.KindTable, "ID, User")
	for _, row := range table {
		fmt.Fprintf(b, "ID: %v, User: %v\n", row[0], row[1])
	}
}

// jaggedRows returns len(users) rows where row i holds the first i+1 users,
// capped at the number of users available.
func jaggedRows(users []domain.User) [][]domain.User {
	rows := make([][]domain.User, len(users))
	for i := range rows {
		n := min(i+1, len(users))
		rows[i] = slices.Clone(users[:n])
	}
	return rows
}

func renderJagged(b *strings.Builder, users []domain.User) {
	header(b, domain.KindJagged, "")
	for i, row := range jaggedRows(users) {
		initials := make([]string, len(row))
		for j, u := range row {
			initials[j] = u.Initials()
		}
		fmt.Fprintf(b, "Row %d: %s\n", i+1, strings.Join(initials, " "))
	}
}

func renderDictionary(b *strings.Builder, users []domain.User) {
	dict := make(map[int64]domain.User, len(users))
	for _, u := range users {
		dict[u.ID] = u
	}

	header(b, domain.KindDictionary, "ID, User")
	for _, id := range slices.Sorted(maps.Keys(dict)) {
		fmt.Fprintf(b, "Key: %d, Value: %s\n", id, dict[id])
	}
}

func renderQueue(b *strings.Builder, users []domain.User) {
	var q datastruct.Queue[domain.User]
	for _, u := range users {
		q.Enqueue(u)
	}

	header(b, domain.KindQueue, "FIFO")
	b.WriteString("Queue order (first to be dequeued first):\n")
	for n := 1; !q.IsEmpty(); n++ {
		u, _ := q.Dequeue()
		fmt.Fprintf(b, "%d. %s\n", n, u)
	}
}

func renderStack(b *strings.Builder, users []domain.User) {
	var s datastruct.Stack[domain.User]
	for _, u := range users {
		s.Push(u)
	}

	header(b, domain.KindStack, "LIFO")
	b.WriteString("Stack order (top to bottom):\n")
	for n := 1; !s.IsEmpty(); n++ {
		u, _ := s.Pop()
		fmt.Fprintf(b, "%d. %s\n", n, u)
	}
}

func renderSet(b *strings.Builder, users []domain.User) {
	set := datastruct.NewSet(users...)

	header(b, domain.KindSet, "")
	fmt.Fprintf(b, "Total unique users: %d\n\n", set.Len())
	for _, u := range set.Slice() {
		fmt.Fprintf(b, "- %s\n", u)
	}
}

func renderLinkedList(b *strings.Builder, users []domain.User) {
	list := datastruct.NewLinkedList(users...)

	header(b, domain.KindLinkedList, "")
	index := 1
	for node := list.Front(); node != nil; node = node.Next() {
		fmt.Fprintf(b, "Node %d: %s\n", index, node.Value)
		index++
	}
}
