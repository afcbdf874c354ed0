package leveldata

import (
	"errors"
	"testing"
	"testing/fstest"
)

const sampleTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="4" height="4" tilewidth="16" tileheight="16" infinite="0" nextlayerid="3" nextobjectid="3">
 <objectgroup id="1" name="rect">
  <object id="1" x="0" y="16" width="32" height="16">
   <properties>
    <property name="level" value="outside"/>
    <property name="height" type="float" value="1.5"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="2" name="level_switch">
  <object id="2" x="32" y="0" width="16" height="16">
   <properties>
    <property name="level" value="outside"/>
    <property name="target" value="lobby"/>
   </properties>
  </object>
 </objectgroup>
</map>
`

func TestLoadTMXShapes(t *testing.T) {
	fsys := fstest.MapFS{"levels/collision.tmx": {Data: []byte(sampleTMX)}}
	shapes, err := LoadTMXShapes(fsys, "levels/collision.tmx")
	if err != nil {
		t.Fatalf("LoadTMXShapes: %v", err)
	}
	if len(shapes) != 2 {
		t.Fatalf("got %d shapes, want 2", len(shapes))
	}

	rect, ok := shapes[0].Shape.(Rect)
	if !ok {
		t.Fatalf("shape 0 is %T, want Rect", shapes[0].Shape)
	}
	want := Rectangle{LeftZ: 0, RightZ: 2, TopX: 3, BottomX: 2, Height: 1.5}
	if rect.Rectangle != want {
		t.Errorf("rect = %+v, want %+v", rect.Rectangle, want)
	}

	sw, ok := shapes[1].Shape.(LevelSwitch)
	if !ok || sw.Target != Lobby || shapes[1].Level != Outside {
		t.Errorf("shape 1 = %#v, want level switch to lobby", shapes[1])
	}
}

func TestLoadTMXShapesUnknownGroup(t *testing.T) {
	doc := `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="1" height="1" tilewidth="16" tileheight="16" infinite="0">
 <objectgroup id="1" name="lava">
  <object id="1" x="0" y="0" width="16" height="16">
   <properties>
    <property name="level" value="movie"/>
   </properties>
  </object>
 </objectgroup>
</map>
`
	fsys := fstest.MapFS{"c.tmx": {Data: []byte(doc)}}
	if _, err := LoadTMXShapes(fsys, "c.tmx"); !errors.Is(err, ErrUnknownShape) {
		t.Errorf("err = %v, want ErrUnknownShape", err)
	}
}

func TestLoadTMXShapesOrigin(t *testing.T) {
	doc := `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="3" height="12" tilewidth="16" tileheight="16" infinite="0">
 <properties>
  <property name="origin_x" type="float" value="-2"/>
  <property name="origin_z" type="float" value="5"/>
 </properties>
 <objectgroup id="1" name="stair">
  <object id="1" x="0" y="96" width="48" height="32">
   <properties>
    <property name="level" value="lobby"/>
    <property name="height" type="float" value="1"/>
   </properties>
  </object>
 </objectgroup>
</map>
`
	fsys := fstest.MapFS{"collision.tmx": {Data: []byte(doc)}}
	shapes, err := LoadTMXShapes(fsys, "collision.tmx")
	if err != nil {
		t.Fatalf("LoadTMXShapes: %v", err)
	}
	stair, ok := shapes[0].Shape.(Stair)
	if !ok {
		t.Fatalf("shape is %T, want Stair", shapes[0].Shape)
	}
	want := Rectangle{LeftZ: 5, RightZ: 8, TopX: 4, BottomX: 2, Height: 1}
	if stair.Rectangle != want {
		t.Errorf("stair = %+v, want %+v", stair.Rectangle, want)
	}
}
