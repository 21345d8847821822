package mediatype

import "testing"

func TestNew(t *testing.T) {
	tests := []struct {
		name        string
		typ         string
		subtype     string
		wantErr     bool
		wantType    string
		wantSubtype string
	}{
		{
			name:        "simple",
			typ:         "text",
			subtype:     "plain",
			wantType:    "text",
			wantSubtype: "plain",
		},
		{
			name:        "lowercased",
			typ:         "TEXT",
			subtype:     "Plain",
			wantType:    "text",
			wantSubtype: "plain",
		},
		{
			name:        "token punctuation",
			typ:         "application",
			subtype:     "vnd.api+json",
			wantType:    "application",
			wantSubtype: "vnd.api+json",
		},
		{
			name:        "double wildcard",
			typ:         "*",
			subtype:     "*",
			wantType:    "*",
			wantSubtype: "*",
		},
		{
			name:        "subtype wildcard",
			typ:         "image",
			subtype:     "*",
			wantType:    "image",
			wantSubtype: "*",
		},
		{
			name:    "wildcard type with concrete subtype",
			typ:     "*",
			subtype: "plain",
			wantErr: true,
		},
		{
			name:    "empty type",
			typ:     "",
			subtype: "plain",
			wantErr: true,
		},
		{
			name:    "empty subtype",
			typ:     "text",
			subtype: "",
			wantErr: true,
		},
		{
			name:    "space in type",
			typ:     "te xt",
			subtype: "plain",
			wantErr: true,
		},
		{
			name:    "slash in subtype",
			typ:     "text",
			subtype: "pla/in",
			wantErr: true,
		},
		{
			name:    "tspecial in subtype",
			typ:     "text",
			subtype: "pla=in",
			wantErr: true,
		},
		{
			name:    "non-ascii type",
			typ:     "tëxt",
			subtype: "plain",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mt, err := New(tt.typ, tt.subtype)

			if tt.wantErr {
				if err == nil {
					t.Fatal("New() expected error but got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("New() unexpected error = %v", err)
			}
			if mt.Type() != tt.wantType {
				t.Errorf("Type() = %q, want %q", mt.Type(), tt.wantType)
			}
			if mt.Subtype() != tt.wantSubtype {
				t.Errorf("Subtype() = %q, want %q", mt.Subtype(), tt.wantSubtype)
			}
		})
	}
}

func TestWithParams(t *testing.T) {
	base, err := New("text", "plain")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	t.Run("keys lowercased values kept", func(t *testing.T) {
		mt, err := base.WithParams([]Param{{Key: "CharSet", Value: "UTF-8"}})
		if err != nil {
			t.Fatalf("WithParams() error = %v", err)
		}
		got, ok := mt.Param("charset")
		if !ok || got != "UTF-8" {
			t.Errorf("Param(\"charset\") = (%q, %v), want (\"UTF-8\", true)", got, ok)
		}
	})

	t.Run("duplicate keys kept in order", func(t *testing.T) {
		mt, err := base.WithParams([]Param{
			{Key: "a", Value: "1"},
			{Key: "b", Value: "2"},
			{Key: "a", Value: "3"},
		})
		if err != nil {
			t.Fatalf("WithParams() error = %v", err)
		}
		ps := mt.Params()
		if len(ps) != 3 {
			t.Fatalf("Params() len = %d, want 3", len(ps))
		}
		if ps[0] != (Param{"a", "1"}) || ps[1] != (Param{"b", "2"}) || ps[2] != (Param{"a", "3"}) {
			t.Errorf("Params() = %v, want ordered duplicates", ps)
		}
		// First value wins for lookup.
		if got, _ := mt.Param("a"); got != "1" {
			t.Errorf("Param(\"a\") = %q, want \"1\"", got)
		}
	})

	t.Run("invalid key rejected", func(t *testing.T) {
		if _, err := base.WithParams([]Param{{Key: "bad key", Value: "v"}}); err == nil {
			t.Error("WithParams() accepted key with space")
		}
		if _, err := base.WithParams([]Param{{Key: "", Value: "v"}}); err == nil {
			t.Error("WithParams() accepted empty key")
		}
	})

	t.Run("value may contain anything", func(t *testing.T) {
		mt, err := base.WithParams([]Param{{Key: "name", Value: `a"b;c\d`}})
		if err != nil {
			t.Fatalf("WithParams() error = %v", err)
		}
		if got, _ := mt.Param("name"); got != `a"b;c\d` {
			t.Errorf("Param(\"name\") = %q", got)
		}
	})

	t.Run("receiver not mutated", func(t *testing.T) {
		_, err := base.WithParams([]Param{{Key: "x", Value: "y"}})
		if err != nil {
			t.Fatalf("WithParams() error = %v", err)
		}
		if len(base.Params()) != 0 {
			t.Error("WithParams() mutated the receiver")
		}
	})
}

func TestParamMissing(t *testing.T) {
	mt, err := New("text", "plain")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if got, ok := mt.Param("charset"); ok || got != "" {
		t.Errorf("Param() on paramless type = (%q, %v), want (\"\", false)", got, ok)
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name    string
		typ     string
		subtype string
		params  []Param
		want    string
	}{
		{
			name:    "bare",
			typ:     "text",
			subtype: "plain",
			want:    "text/plain",
		},
		{
			name:    "token value stays bare",
			typ:     "text",
			subtype: "plain",
			params:  []Param{{Key: "charset", Value: "utf-8"}},
			want:    "text/plain;charset=utf-8",
		},
		{
			name:    "non-token value quoted",
			typ:     "text",
			subtype: "plain",
			params:  []Param{{Key: "name", Value: "two words"}},
			want:    `text/plain;name="two words"`,
		},
		{
			name:    "quote and backslash escaped",
			typ:     "application",
			subtype: "json",
			params:  []Param{{Key: "name", Value: `a"b\c`}},
			want:    `application/json;name="a\"b\\c"`,
		},
		{
			name:    "empty value quoted",
			typ:     "text",
			subtype: "plain",
			params:  []Param{{Key: "name", Value: ""}},
			want:    `text/plain;name=""`,
		},
		{
			name:    "multiple params in order",
			typ:     "text",
			subtype: "plain",
			params:  []Param{{Key: "a", Value: "1"}, {Key: "b", Value: "2"}},
			want:    "text/plain;a=1;b=2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mt, err := New(tt.typ, tt.subtype)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if len(tt.params) > 0 {
				mt, err = mt.WithParams(tt.params)
				if err != nil {
					t.Fatalf("WithParams() error = %v", err)
				}
			}
			if got := mt.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStringZeroValue(t *testing.T) {
	var mt MediaType
	if got := mt.String(); got != "" {
		t.Errorf("zero MediaType String() = %q, want empty", got)
	}
}
