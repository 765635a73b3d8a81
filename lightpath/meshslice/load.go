package meshslice

import (
	"fmt"

	"github.com/fogleman/pt/pt"
	"github.com/hpinc/go3mf"
)

// Load3MF reads every mesh object of a 3MF build into one Mesh. Vertex
// coordinates are divided by scale; 3MF files are usually in millimetres, so a
// scale of 1000 gives metres.
func Load3MF(path string, scale float64) (Mesh, error) {
	if scale == 0 {
		scale = 1
	}
	r, err := go3mf.OpenReader(path)
	if err != nil {
		return Mesh{}, fmt.Errorf("opening 3MF file %s: %w", path, err)
	}
	defer r.Close()

	var model go3mf.Model
	if err := r.Decode(&model); err != nil {
		return Mesh{}, fmt.Errorf("decoding 3MF file %s: %w", path, err)
	}

	var mesh Mesh
	for _, item := range model.Build.Items {
		obj, ok := model.FindObject(item.ObjectPath(), item.ObjectID)
		if !ok || obj.Mesh == nil {
			continue
		}
		vertices := obj.Mesh.Vertices.Vertex
		vertex := func(i int) pt.Vector {
			v := vertices[i]
			return pt.Vector{
				X: float64(v.X()) / scale,
				Y: float64(v.Y()) / scale,
				Z: float64(v.Z()) / scale,
			}
		}
		for _, t := range obj.Mesh.Triangles.Triangle {
			mesh.Triangles = append(mesh.Triangles, Triangle{
				V1: vertex(int(t.V1)),
				V2: vertex(int(t.V2)),
				V3: vertex(int(t.V3)),
			})
		}
	}
	return mesh, nil
}
