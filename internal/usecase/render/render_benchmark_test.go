package render

import (
	"fmt"
	"testing"

	domain "user-container-demo/internal/domain/user"
)

func benchmarkUsers(n int) []domain.User {
	users := make([]domain.User, n)
	for i := range users {
		users[i] = domain.User{
			ID:        int64(i + 1),
			FirstName: fmt.Sprintf("First%d", i),
			LastName:  fmt.Sprintf("Last%d", i),
			Email:     fmt.Sprintf("user_%d@example.com", i),
			Age:       20 + i%50,
		}
	}
	return users
}

func BenchmarkRender(b *testing.B) {
	users := benchmarkUsers(200)

	for _, kind := range domain.Kinds() {
		b.Run(kind.Key(), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_ = Render(users, kind)
			}
		})
	}
}
