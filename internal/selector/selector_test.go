package selector

import (
	"errors"
	"testing"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"randbg/internal/domain"
	"randbg/internal/domain/mocks"
)

func TestRandomSelector_Select(t *testing.T) {
	tests := []struct {
		name       string
		candidates []string
		exclude    string
		setupRand  func(*mocks.MockRand)
		want       string
		wantErr    error
	}{
		{
			name:       "No exclusion draws from the full set",
			candidates: []string{"/w/a.png", "/w/b.jpg", "/w/c.gif"},
			setupRand: func(m *mocks.MockRand) {
				m.EXPECT().IntN(3).Return(1)
			},
			want: "/w/b.jpg",
		},
		{
			name:       "Excluded path never enters the draw",
			candidates: []string{"/w/a.png", "/w/b.jpg", "/w/c.gif"},
			exclude:    "/w/b.jpg",
			setupRand: func(m *mocks.MockRand) {
				// The bound shows the effective set shrank to N-1
				m.EXPECT().IntN(2).Return(1)
			},
			want: "/w/c.gif",
		},
		{
			name:       "Single cached candidate falls back to itself",
			candidates: []string{"/w/a.png"},
			exclude:    "/w/a.png",
			setupRand: func(m *mocks.MockRand) {
				m.EXPECT().IntN(1).Return(0)
			},
			want: "/w/a.png",
		},
		{
			name:       "Exclusion of an unknown path changes nothing",
			candidates: []string{"/w/a.png", "/w/b.jpg"},
			exclude:    "/elsewhere/z.png",
			setupRand: func(m *mocks.MockRand) {
				m.EXPECT().IntN(2).Return(0)
			},
			want: "/w/a.png",
		},
		{
			name:      "Empty candidate set fails",
			setupRand: func(m *mocks.MockRand) {},
			wantErr:   domain.ErrNoCandidates,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			rnd := mocks.NewMockRand(ctrl)
			tt.setupRand(rnd)

			got, err := NewRandomSelector(zap.NewNop(), rnd).Select(tt.candidates, tt.exclude)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("want error %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("want %s, got %s", tt.want, got)
			}
		})
	}
}

func TestSystemRand_IntN(t *testing.T) {
	rnd := NewSystemRand()
	for range 100 {
		if got := rnd.IntN(5); got < 0 || got >= 5 {
			t.Fatalf("IntN(5) out of range: %d", got)
		}
	}
}
