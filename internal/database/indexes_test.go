package database

import (
	"testing"
)

func TestParseIndexTag_UniqueSparse(t *testing.T) {
	configs := parseIndexTag("unique,sparse")
	if len(configs) != 1 {
		t.Fatalf("số cấu hình không đúng: muốn 1, nhận %d", len(configs))
	}
	if _, ok := configs[0]["unique"]; !ok {
		t.Errorf("thiếu thuộc tính unique trong cấu hình: %v", configs[0])
	}
	if _, ok := configs[0]["sparse"]; !ok {
		t.Errorf("thiếu thuộc tính sparse trong cấu hình: %v", configs[0])
	}
}

func TestParseIndexTag_SingleWithOrder(t *testing.T) {
	configs := parseIndexTag("single,order:-1")
	if len(configs) != 1 {
		t.Fatalf("số cấu hình không đúng: muốn 1, nhận %d", len(configs))
	}
	if _, ok := configs[0]["single"]; !ok {
		t.Errorf("thiếu thuộc tính single trong cấu hình: %v", configs[0])
	}
	if configs[0]["order"] != "-1" {
		t.Errorf("order không đúng: muốn -1, nhận %q", configs[0]["order"])
	}
}

func TestParseIndexTag_MultipleConfigs(t *testing.T) {
	configs := parseIndexTag("unique;single,order:-1")
	if len(configs) != 2 {
		t.Fatalf("số cấu hình không đúng: muốn 2, nhận %d", len(configs))
	}
	if _, ok := configs[0]["unique"]; !ok {
		t.Errorf("cấu hình đầu thiếu unique: %v", configs[0])
	}
	if _, ok := configs[1]["single"]; !ok {
		t.Errorf("cấu hình sau thiếu single: %v", configs[1])
	}
}

func TestParseConfigOrder(t *testing.T) {
	cases := []struct {
		config map[string]string
		want   int
	}{
		{map[string]string{"single": ""}, 1},
		{map[string]string{"single": "", "order": "1"}, 1},
		{map[string]string{"single": "", "order": "-1"}, -1},
	}
	for _, c := range cases {
		if got := parseConfigOrder(c.config); got != c.want {
			t.Errorf("parseConfigOrder(%v) không đúng: muốn %d, nhận %d", c.config, c.want, got)
		}
	}
}
