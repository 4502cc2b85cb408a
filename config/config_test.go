package config

import "testing"

func TestSkillButtonLayout(t *testing.T) {
	n := len(Skills)
	cases := []struct {
		skill SkillID
		x, y  float64
	}{
		{SkillFire, 740, 190},
		{SkillLightning, 740, 260},
		{SkillBanana, 740, 330},
		{SkillSuper, 740, 400},
	}
	for i, tc := range cases {
		x, y := Input.SkillButton(i, n, 800, 450)
		if x != tc.x || y != tc.y {
			t.Fatalf("%s: got=(%f,%f) want=(%f,%f)", tc.skill, x, y, tc.x, tc.y)
		}
		if Skills[i].ID != tc.skill {
			t.Fatalf("button %d: got=%s want=%s", i, Skills[i].ID, tc.skill)
		}
	}
}

func TestSkillButtonAt(t *testing.T) {
	n := len(Skills)
	if i, ok := Input.SkillButtonAt(740+29, 400, n, 800, 450); !ok || i != 3 {
		t.Fatalf("edge of super button: got=%d ok=%v", i, ok)
	}
	if _, ok := Input.SkillButtonAt(740+30, 400, n, 800, 450); ok {
		t.Fatal("hit radius is exclusive")
	}
	if _, ok := Input.SkillButtonAt(400, 225, n, 800, 450); ok {
		t.Fatal("centre of the pitch is not a button")
	}
}

func TestSkillByIDFallsBack(t *testing.T) {
	if got := SkillByID(SkillLightning); got.Power != 22 || got.Cooldown != 150 {
		t.Fatalf("lightning: %+v", got)
	}
	if got := SkillByID(SkillID(77)); got.Name != DefaultSkill.Name {
		t.Fatalf("unknown id: got=%s want=%s", got.Name, DefaultSkill.Name)
	}
	if got := SkillID(77).String(); got != "shot" {
		t.Fatalf("unknown id name: %s", got)
	}
}

func TestEnumDefaults(t *testing.T) {
	if EffectKind(99).String() != "normal" {
		t.Fatalf("unknown effect: %s", EffectKind(99))
	}
	if StateID(99).String() != "unknown" {
		t.Fatalf("unknown state: %s", StateID(99))
	}
	if ParseSide("away") != SideAway || ParseSide("") != SideHome || ParseSide("visitors") != SideHome {
		t.Fatal("ParseSide")
	}
}
