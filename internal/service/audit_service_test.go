package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"clinicportal/internal/model"
)

func TestAuditService_Record(t *testing.T) {
	repo := new(MockAuditRepository)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(e *model.AuditEntry) bool {
		return e.SessionID == "sid-admin" && e.Role == "admin" && e.Action == model.AuditDoctorDelete &&
			e.Subject == "7" && !e.Success && len(e.Message) == 500
	})).Return(nil)

	NewAuditService(repo).Record(context.Background(), adminSession(), model.AuditDoctorDelete, "7", errors.New(strings.Repeat("x", 600)))
	repo.AssertExpectations(t)
}

func TestAuditService_StoreFailureIsSwallowed(t *testing.T) {
	repo := new(MockAuditRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("db down"))

	assert.NotPanics(t, func() {
		NewAuditService(repo).Record(context.Background(), nil, model.AuditPatientSignup, "pat@x.test", nil)
	})
	repo.AssertExpectations(t)
}

func TestAuditService_Disabled(t *testing.T) {
	service := noAudit()
	service.Record(context.Background(), adminSession(), model.AuditLogin, "admin:root", nil)

	entries, err := service.Recent(context.Background(), 10)
	assert.NoError(t, err)
	assert.Empty(t, entries)
}

func TestAuditService_RecentClampsLimit(t *testing.T) {
	repo := new(MockAuditRepository)
	repo.On("ListRecent", mock.Anything, 50).Return([]model.AuditEntry{{Action: model.AuditLogin}}, nil)

	entries, err := NewAuditService(repo).Recent(context.Background(), 1000)
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	repo.AssertExpectations(t)
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{"short", "abc", 5, "abc"},
		{"exact", "abc", 3, "abc"},
		{"ascii", "abcdef", 4, "abcd"},
		{"multi byte", "Zoë Müller", 3, "Zoë"},
		{"two byte runes", "ééé", 2, "éé"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.in, tt.n)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}

	long := strings.Repeat("ü", 600)
	assert.Equal(t, 500, utf8.RuneCountInString(truncate(long, 500)))
	assert.True(t, utf8.ValidString(truncate(long, 500)))
}
