package webhook

import "testing"

func TestParseContentType(t *testing.T) {
	tests := []struct {
		name string
		s    string
		want ContentType
		err  error
	}{
		{name: "JSON", s: "application/json", want: ContentTypeJSON},
		{name: "JSON charset", s: "application/json; charset=utf-8", want: ContentTypeJSON},
		{name: "Form", s: "application/x-www-form-urlencoded", want: ContentTypeForm},
		{name: "Short JSON", s: "json", want: ContentTypeJSON},
		{name: "Short form", s: "form", want: ContentTypeForm},
		{name: "Invalid", s: "application/invalid", err: ErrInvalidContentType, want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseContentType(tt.s)
			if err != tt.err {
				t.Errorf("ParseContentType() error = %v, wantErr %v", err, tt.err)
				return
			}
			if got != tt.want {
				t.Errorf("ParseContentType() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestContentTypeText(t *testing.T) {
	var ct ContentType
	if err := ct.UnmarshalText([]byte("application/x-www-form-urlencoded")); err != nil {
		t.Fatal(err)
	}
	if ct != ContentTypeForm {
		t.Errorf("UnmarshalText() got = %v, want %v", ct, ContentTypeForm)
	}
	if _, err := ContentType(9).MarshalText(); err != ErrInvalidContentType {
		t.Errorf("MarshalText() error = %v, want %v", err, ErrInvalidContentType)
	}
}

func TestParseEvent(t *testing.T) {
	for _, e := range Events() {
		got, err := ParseEvent(e.String())
		if err != nil || got != e {
			t.Errorf("ParseEvent(%q) = %v, %v, want %v", e.String(), got, err, e)
		}
	}
	if _, err := ParseEvent("push"); err != ErrInvalidEvent {
		t.Errorf("ParseEvent(push) error = %v, want %v", err, ErrInvalidEvent)
	}
}
