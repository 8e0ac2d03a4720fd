package material

import "testing"

func TestDefineAndFind(t *testing.T) {
	tbl := NewTable()
	tbl.Define(Material{Tag: "brass", Shininess: 40})

	m, ok := tbl.Find("brass")
	if !ok {
		t.Fatal("expected to find defined material")
	}
	if m.Shininess != 40 {
		t.Errorf("expected shininess 40, got %f", m.Shininess)
	}
}

func TestFindMissOnEmptyTable(t *testing.T) {
	tbl := NewTable()

	m, ok := tbl.Find("anything")
	if ok {
		t.Error("expected miss on empty table")
	}
	if m.Tag != "" {
		t.Errorf("miss returned non-zero material: %+v", m)
	}
}

func TestFindMiss(t *testing.T) {
	tbl := NewTable()
	tbl.Define(Material{Tag: "wood"})

	if _, ok := tbl.Find("steel"); ok {
		t.Error("expected miss for unknown tag")
	}
}

func TestDuplicateTagFirstWins(t *testing.T) {
	tbl := NewTable()
	tbl.Define(Material{Tag: "dup", Shininess: 1})
	tbl.Define(Material{Tag: "dup", Shininess: 2})

	if tbl.Len() != 2 {
		t.Errorf("expected both definitions kept, got %d", tbl.Len())
	}
	m, _ := tbl.Find("dup")
	if m.Shininess != 1 {
		t.Errorf("expected first definition to win, got shininess %f", m.Shininess)
	}
}

func TestDefaults(t *testing.T) {
	tbl := NewTable()
	for _, m := range Defaults() {
		tbl.Define(m)
	}

	if tbl.Len() != 6 {
		t.Fatalf("expected 6 default materials, got %d", tbl.Len())
	}

	for _, tag := range []string{"metal", "wood", "glass", "plastic", "cloth", "aluminum"} {
		if _, ok := tbl.Find(tag); !ok {
			t.Errorf("missing default material %q", tag)
		}
	}

	glass, _ := tbl.Find("glass")
	if glass.Shininess != 85 {
		t.Errorf("expected glass shininess 85, got %f", glass.Shininess)
	}
	if glass.SpecularColor.X() != 0.6 {
		t.Errorf("expected glass specular 0.6, got %f", glass.SpecularColor.X())
	}

	cloth, _ := tbl.Find("cloth")
	if cloth.AmbientStrength != 0.7 {
		t.Errorf("expected cloth ambient strength 0.7, got %f", cloth.AmbientStrength)
	}
}
