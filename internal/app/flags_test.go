package app

import (
	"flag"
	"testing"
)

func TestBindParsesSimParameters(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	err := fs.Parse([]string{"-sim", "regions", "-seed", "9", "-set", "regions=5,metric=manhattan", "-set", "w=40"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Sim != "regions" || cfg.Seed != 9 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	want := map[string]string{"regions": "5", "metric": "manhattan", "w": "40"}
	for k, v := range want {
		if cfg.Set[k] != v {
			t.Fatalf("param %s = %q, want %q", k, cfg.Set[k], v)
		}
	}
}

func TestParamsRejectsMalformed(t *testing.T) {
	if err := (Params{}).Set("novalue"); err == nil {
		t.Fatal("expected an error for a pair without '='")
	}
}
