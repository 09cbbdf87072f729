package eval

import (
	"reflect"
	"testing"
)

func TestExtractKeywords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "simple english",
			text: "TCP is a reliable transport protocol",
			want: []string{"tcp", "reliable", "transport", "protocol"},
		},
		{
			name: "stop words dropped",
			text: "the data is in the cloud and it can be lost",
			want: []string{"data", "cloud", "lost"},
		},
		{
			name: "punctuation separates tokens",
			text: "client-server model; stateless, cacheable!",
			want: []string{"client", "server", "model", "stateless", "cacheable"},
		},
		{
			name: "duplicates keep first occurrence",
			text: "packet loss causes packet retransmission",
			want: []string{"packet", "loss", "causes", "retransmission"},
		},
		{
			name: "single letters dropped",
			text: "a b c container",
			want: []string{"container"},
		},
		{
			name: "korean syllables",
			text: "데이터는 클라우드에 저장된다",
			want: []string{"데이터는", "클라우드에", "저장된다"},
		},
		{
			name: "mixed korean and english",
			text: "TCP는 신뢰성 있는 프로토콜",
			want: []string{"tcp는", "신뢰성", "있는", "프로토콜"},
		},
		{
			name: "digits kept",
			text: "ipv4 uses 32 bit addresses",
			want: []string{"ipv4", "uses", "32", "bit", "addresses"},
		},
		{
			name: "empty input",
			text: "",
			want: nil,
		},
		{
			name: "only separators",
			text: "... --- !!!",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractKeywords(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractKeywords(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtractKeywordsCaseInsensitive(t *testing.T) {
	a := ExtractKeywords("Reliable TRANSPORT Protocol")
	b := ExtractKeywords("reliable transport protocol")
	if !reflect.DeepEqual(a, b) {
		t.Errorf("case should not matter: %v vs %v", a, b)
	}
}
