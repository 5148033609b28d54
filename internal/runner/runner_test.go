package runner

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/projectdiscovery/goflags"
)

func TestNewRunner(t *testing.T) {
	tests := []struct {
		name    string
		options Options
		wantErr bool
	}{
		{
			name:    "defaults",
			options: Options{NoLabels: true},
			wantErr: false,
		},
		{
			name:    "tcp probe with ports",
			options: Options{NoLabels: true, ProbeKind: "tcp", Ports: "22,8080"},
			wantErr: false,
		},
		{
			name:    "bad port list",
			options: Options{NoLabels: true, Ports: "80,abc"},
			wantErr: true,
		},
		{
			name:    "unknown probe mechanism",
			options: Options{NoLabels: true, ProbeKind: "arp"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRunner(&tt.options)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewRunner() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNetworks(t *testing.T) {
	tests := []struct {
		name    string
		targets string
		want    []string
	}{
		{
			name:    "duplicates collapse keeping first position",
			targets: "10.0.0.0/24, 10.0.0.0/24,10.0.1.0/24",
			want:    []string{"10.0.0.0/24", "10.0.1.0/24"},
		},
		{
			name:    "host bits normalize before dedupe",
			targets: "10.0.0.5/24,10.0.0.0/24",
			want:    []string{"10.0.0.0/24"},
		},
		{
			name:    "invalid tokens drop",
			targets: "bogus,10.0.0.0/24,300.1.2.3/8",
			want:    []string{"10.0.0.0/24"},
		},
		{
			name:    "empty list",
			targets: "",
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRunner(&Options{Targets: tt.targets, NoLabels: true})
			if err != nil {
				t.Fatalf("NewRunner() error = %v", err)
			}
			networks := r.networks()
			got := make([]string, 0, len(networks))
			for _, network := range networks {
				got = append(got, network.String())
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("networks() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTitles(t *testing.T) {
	labelFile := filepath.Join(t.TempDir(), "rollcall.conf")
	content := "[networks]\n10.0.0.0/24 Office\n"
	if err := os.WriteFile(labelFile, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	r, err := NewRunner(&Options{
		Targets:   "10.0.0.0/24,10.0.1.0/24,10.0.2.0/24",
		LabelFile: labelFile,
		Names:     goflags.StringSlice{"ignored", "Lab"},
	})
	if err != nil {
		t.Fatalf("NewRunner() error = %v", err)
	}

	got := r.titles(r.networks())
	// Store label beats the positional name; the positional name beats the
	// bare network; anything past the names list stays bare.
	want := []string{"10.0.0.0/24 Office", "10.0.1.0/24 Lab", "10.0.2.0/24"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("titles() = %v, want %v", got, want)
	}
}
