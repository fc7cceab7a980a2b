package security

import "testing"

func TestSanitizeCommandForLog(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "no secrets",
			input: "echo hello",
			want:  "echo hello",
		},
		{
			name:  "ssh password assignment",
			input: "SSH_PASSWORD=hunter2 ./deploy.sh",
			want:  "SSH_PASSWORD=**** ./deploy.sh",
		},
		{
			name:  "single quoted value",
			input: "export SSH_PASSWORD='hunter two'",
			want:  "export SSH_PASSWORD=****",
		},
		{
			name:  "double quoted value",
			input: `SSH_PASSWORD="hunter two" run`,
			want:  "SSH_PASSWORD=**** run",
		},
		{
			name:  "database url",
			input: "DATABASE_URL=postgres://u:p@h/db migrate",
			want:  "DATABASE_URL=**** migrate",
		},
		{
			name:  "multiple occurrences",
			input: "SSH_PASSWORD=a cmd && SSH_PASSWORD=b cmd",
			want:  "SSH_PASSWORD=**** cmd && SSH_PASSWORD=**** cmd",
		},
		{
			name:  "value at end of string",
			input: "SSH_PASSWORD=trailing",
			want:  "SSH_PASSWORD=****",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeCommandForLog(tt.input); got != tt.want {
				t.Errorf("SanitizeCommandForLog(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
