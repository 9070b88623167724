package portal

import "testing"

func TestCronTag(t *testing.T) {
	v := GetDefaultValidator()

	type schedule struct {
		Spec string `validate:"cron"`
	}

	for _, spec := range []string{"0 3 * * *", "@daily", "*/5 * * * *"} {
		if ok, err := v.Passes(schedule{Spec: spec}); !ok || err != nil {
			t.Fatalf("expected %q to validate: %v", spec, v.GetErrors())
		}
	}

	for _, spec := range []string{"invalid", "", "61 * * * *"} {
		if ok, err := v.Passes(schedule{Spec: spec}); ok || err == nil {
			t.Fatalf("expected %q to be rejected", spec)
		}
	}
}
