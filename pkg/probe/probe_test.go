package probe

import (
	"context"
	"net"
	"reflect"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		options  Options
		wantErr  bool
		validate func(t *testing.T, prober Prober)
	}{
		{
			name:    "icmp by default",
			options: Options{},
			validate: func(t *testing.T, prober Prober) {
				if _, ok := prober.(*ICMPProber); !ok {
					t.Errorf("New() = %T, want *ICMPProber", prober)
				}
			},
		},
		{
			name:    "tcp with default ports",
			options: Options{Kind: TCP},
			validate: func(t *testing.T, prober Prober) {
				tcp, ok := prober.(*TCPProber)
				if !ok {
					t.Fatalf("New() = %T, want *TCPProber", prober)
				}
				if !reflect.DeepEqual(tcp.ports, DefaultPorts) {
					t.Errorf("ports = %v, want %v", tcp.ports, DefaultPorts)
				}
				if tcp.timeout != DefaultTimeout {
					t.Errorf("timeout = %s, want %s", tcp.timeout, DefaultTimeout)
				}
			},
		},
		{
			name:    "explicit timeout and ports",
			options: Options{Kind: TCP, Timeout: 3 * time.Second, Ports: []int{8080}},
			validate: func(t *testing.T, prober Prober) {
				tcp := prober.(*TCPProber)
				if tcp.timeout != 3*time.Second {
					t.Errorf("timeout = %s, want 3s", tcp.timeout)
				}
				if !reflect.DeepEqual(tcp.ports, []int{8080}) {
					t.Errorf("ports = %v, want [8080]", tcp.ports)
				}
			},
		},
		{
			name:    "unknown mechanism",
			options: Options{Kind: "arp"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prober, err := New(tt.options)
			if (err != nil) != tt.wantErr {
				t.Errorf("New() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if err == nil && tt.validate != nil {
				tt.validate(t, prober)
			}
		})
	}
}

func TestParsePorts(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		want    []int
		wantErr bool
	}{
		{
			name: "simple list",
			spec: "80,443,22",
			want: []int{80, 443, 22},
		},
		{
			name: "whitespace and duplicates",
			spec: " 80, 443 ,80 ",
			want: []int{80, 443},
		},
		{
			name:    "not a number",
			spec:    "80,http",
			wantErr: true,
		},
		{
			name:    "port zero",
			spec:    "0",
			wantErr: true,
		},
		{
			name:    "port out of range",
			spec:    "65536",
			wantErr: true,
		},
		{
			name:    "nothing usable",
			spec:    ",,",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ports, err := ParsePorts(tt.spec)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParsePorts() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if err != nil {
				return
			}
			if !reflect.DeepEqual(ports, tt.want) {
				t.Errorf("ParsePorts() = %v, want %v", ports, tt.want)
			}
		})
	}
}

func TestTCPProberOpenPort(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer listener.Close()

	go func() {
		for {
			conn, err := listener.Accept()
			if err != nil {
				return
			}
			conn.Close()
		}
	}()

	port := listener.Addr().(*net.TCPAddr).Port
	prober := &TCPProber{timeout: time.Second, ports: []int{port}}

	if !prober.Probe(context.Background(), "127.0.0.1") {
		t.Error("Probe() = false for an address with an open port, want true")
	}
}

func TestTCPProberRefusedPort(t *testing.T) {
	// Grab a free port and release it so the connect gets refused.
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	port := listener.Addr().(*net.TCPAddr).Port
	listener.Close()

	prober := &TCPProber{timeout: time.Second, ports: []int{port}}

	// A refusal proves a live stack, so the host still counts as up.
	if !prober.Probe(context.Background(), "127.0.0.1") {
		t.Error("Probe() = false for a refused connection, want true")
	}
}

func TestTCPProberCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	prober := &TCPProber{timeout: time.Second, ports: []int{80}}
	if prober.Probe(ctx, "127.0.0.1") {
		t.Error("Probe() = true with a cancelled context, want false")
	}
}

func TestICMPProberBadAddress(t *testing.T) {
	prober := &ICMPProber{timeout: 50 * time.Millisecond, privileged: false}
	if prober.Probe(context.Background(), "not an address") {
		t.Error("Probe() = true for a malformed address, want false")
	}
}
