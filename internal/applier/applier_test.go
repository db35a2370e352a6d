package applier

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"randbg/internal/domain"
	"randbg/internal/domain/mocks"
)

func newTestApplier(t *testing.T, command string) *CommandApplier {
	t.Helper()
	ctrl := gomock.NewController(t)
	cfg := mocks.NewMockConfig(ctrl)
	cfg.EXPECT().GetChangerCommand().Return(command)
	return NewCommandApplier(zap.NewNop(), cfg)
}

func TestCommandApplier_BuildArgs(t *testing.T) {
	tests := []struct {
		name    string
		command string
		want    []string
	}{
		{
			name:    "swww keeps its img subcommand and transition flags",
			command: "swww",
			want: []string{
				"img",
				"--transition-type", "any",
				"--transition-step", "30",
				"--transition-duration", "3",
				"--transition-fps", "165",
				"/w/a.png",
			},
		},
		{
			name:    "Unknown changer gets the path as its only argument",
			command: "feh",
			want:    []string{"/w/a.png"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := newTestApplier(t, tt.command).buildArgs("/w/a.png")
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("want %v, got %v", tt.want, got)
			}
		})
	}
}

func TestCommandApplier_Apply(t *testing.T) {
	tests := []struct {
		name    string
		command string
		wantErr bool
	}{
		{name: "Zero exit succeeds", command: "true"},
		{name: "Non-zero exit fails", command: "false", wantErr: true},
		{name: "Missing binary fails", command: "randbg-no-such-changer", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := newTestApplier(t, tt.command).Apply(context.Background(), "/w/a.png")

			if tt.wantErr {
				if !errors.Is(err, domain.ErrApplyCommand) {
					t.Fatalf("want ErrApplyCommand, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
