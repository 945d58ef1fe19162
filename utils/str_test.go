package utils

import "testing"

func TestGbkRoundTrip(t *testing.T) {
	const s = "环路一号"
	gbk, err := Utf8StrToGbk(s)
	if err != nil {
		t.Fatal(err)
	}
	back, err := GbkStrToUtf8(gbk)
	if err != nil {
		t.Fatal(err)
	}
	if back != s {
		t.Fatalf("round trip changed string: %q", back)
	}
}

func TestB2SS2B(t *testing.T) {
	s := "SN3_roads_train_AOI_3_Paris"
	if B2S(S2B(s)) != s {
		t.Fatal("byte/string view mismatch")
	}
}

func TestPurifyForUtf8(t *testing.T) {
	if got := PurifyForUtf8("road\x00name"); got != "roadname" {
		t.Fatalf("got %q", got)
	}
}
