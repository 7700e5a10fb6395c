package system

import "testing"

func TestMaskPassword(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"url with password", "postgres://gantt:s3cret@db:5432/gantt", "postgres://gantt:****@db:5432/gantt"},
		{"url password containing at", "postgresql://gantt:p@ss@db/gantt", "postgresql://gantt:****@db/gantt"},
		{"url without password", "postgres://gantt@db/gantt", "postgres://gantt@db/gantt"},
		{"dsn with password", "host=db user=gantt password=s3cret dbname=gantt", "host=db user=gantt password=**** dbname=gantt"},
		{"dsn without password", "host=db user=gantt dbname=gantt", "host=db user=gantt dbname=gantt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := maskPassword(tt.in); got != tt.want {
				t.Errorf("maskPassword(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
