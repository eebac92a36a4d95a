// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meshio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"cogentcore.org/core/math32"
	"cogentcore.org/meshedit/mesh"
)

// objVertex is one face corner: indices into the position, texcoord,
// and normal pools, already 0-based, -1 when absent.
type objVertex struct {
	pos, tc, norm int
}

// ReadOBJ reads Wavefront OBJ geometry from the reader. It handles
// v, vt, vn, and f lines, 1-based and negative indices, and fan
// triangulates polygons with more than three corners. Corners sharing
// the same position, texcoord, and normal are merged into one vertex,
// and normals are computed when the file has none. Material and group
// statements are skipped.
func ReadOBJ(r io.Reader, name string) (*mesh.Mesh, error) {
	var positions, normals []math32.Vector3
	var texcoords []math32.Vector2
	var faces [][]objVertex

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		switch fields[0] {
		case "v":
			v, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("obj %s line %d: %w", name, line, err)
			}
			positions = append(positions, v)
		case "vn":
			v, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("obj %s line %d: %w", name, line, err)
			}
			normals = append(normals, v)
		case "vt":
			if len(fields) < 3 {
				return nil, fmt.Errorf("obj %s line %d: texcoord needs 2 values", name, line)
			}
			u, err := parseFloat(fields[1])
			if err != nil {
				return nil, fmt.Errorf("obj %s line %d: %w", name, line, err)
			}
			v, err := parseFloat(fields[2])
			if err != nil {
				return nil, fmt.Errorf("obj %s line %d: %w", name, line, err)
			}
			texcoords = append(texcoords, math32.Vec2(u, v))
		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("obj %s line %d: face needs at least 3 corners", name, line)
			}
			face := make([]objVertex, 0, len(fields)-1)
			for _, fv := range fields[1:] {
				ov, err := parseFaceVertex(fv, len(positions), len(texcoords), len(normals))
				if err != nil {
					return nil, fmt.Errorf("obj %s line %d: %w", name, line, err)
				}
				face = append(face, ov)
			}
			faces = append(faces, face)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("obj %s: %w", name, err)
	}
	if len(faces) == 0 {
		return nil, fmt.Errorf("obj %s: no faces", name)
	}

	hasNormals := len(normals) > 0
	hasTexcoords := len(texcoords) > 0

	ms := mesh.NewMesh(name)
	seen := map[objVertex]uint32{}
	addVertex := func(ov objVertex) uint32 {
		if vi, ok := seen[ov]; ok {
			return vi
		}
		vi := uint32(len(seen))
		seen[ov] = vi
		p := positions[ov.pos]
		ms.Vertex = append(ms.Vertex, p.X, p.Y, p.Z)
		if hasNormals { // corners without a vn reference get a zero normal to keep alignment
			var n math32.Vector3
			if ov.norm >= 0 {
				n = normals[ov.norm]
			}
			ms.Normal = append(ms.Normal, n.X, n.Y, n.Z)
		}
		if hasTexcoords {
			var tc math32.Vector2
			if ov.tc >= 0 {
				tc = texcoords[ov.tc]
			}
			ms.TexCoord = append(ms.TexCoord, tc.X, tc.Y)
		}
		return vi
	}
	for _, face := range faces {
		for i := 1; i+1 < len(face); i++ {
			ms.Index = append(ms.Index, addVertex(face[0]), addVertex(face[i]), addVertex(face[i+1]))
		}
	}
	if !hasNormals {
		ms.ComputeNormals()
	}
	ms.UpdateBounds()
	return ms, nil
}

// OpenOBJ reads the OBJ file at the given path.
func OpenOBJ(path string) (*mesh.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("obj: %w", err)
	}
	defer f.Close()
	ms, err := ReadOBJ(f, fileName(path))
	if err != nil {
		return nil, err
	}
	stampMeta(ms, path, "obj")
	return ms, nil
}

// parseVec3 parses three floats from the given fields.
func parseVec3(fields []string) (math32.Vector3, error) {
	if len(fields) < 3 {
		return math32.Vector3{}, fmt.Errorf("need 3 values, have %d", len(fields))
	}
	var v math32.Vector3
	for i, p := range []*float32{&v.X, &v.Y, &v.Z} {
		f, err := parseFloat(fields[i])
		if err != nil {
			return math32.Vector3{}, err
		}
		*p = f
	}
	return v, nil
}

func parseFloat(s string) (float32, error) {
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, fmt.Errorf("bad number %q: %w", s, err)
	}
	return float32(f), nil
}

// parseFaceVertex parses one face corner, v, v/vt, v//vn, or v/vt/vn.
// OBJ indices are 1-based, and negative indices count back from the
// end of the pool read so far.
func parseFaceVertex(s string, np, ntc, nn int) (objVertex, error) {
	ov := objVertex{pos: -1, tc: -1, norm: -1}
	for i, p := range strings.Split(s, "/") {
		if p == "" {
			continue
		}
		idx, err := strconv.Atoi(p)
		if err != nil {
			return ov, fmt.Errorf("bad face index %q: %w", p, err)
		}
		var n int
		switch i {
		case 0:
			n = np
		case 1:
			n = ntc
		case 2:
			n = nn
		default:
			return ov, fmt.Errorf("bad face corner %q", s)
		}
		if idx < 0 {
			idx += n
		} else {
			idx--
		}
		if idx < 0 || idx >= n {
			return ov, fmt.Errorf("face index %q out of range", p)
		}
		switch i {
		case 0:
			ov.pos = idx
		case 1:
			ov.tc = idx
		case 2:
			ov.norm = idx
		}
	}
	if ov.pos < 0 {
		return ov, fmt.Errorf("face corner %q has no position", s)
	}
	return ov, nil
}

//////// 	Writing

// WriteOBJ writes the mesh to the writer as Wavefront OBJ, with
// positions, texcoords, and normals sharing one index space.
func WriteOBJ(w io.Writer, ms *mesh.Mesh) error {
	bw := bufio.NewWriter(w)
	if ms.Name != "" {
		fmt.Fprintf(bw, "o %s\n", ms.Name)
	}
	nv := ms.NumVertex()
	for i := range nv {
		v := ms.VertexPos(i)
		fmt.Fprintf(bw, "v %g %g %g\n", v.X, v.Y, v.Z)
	}
	hasTexcoords := len(ms.TexCoord) >= nv*2
	if hasTexcoords {
		for i := range nv {
			fmt.Fprintf(bw, "vt %g %g\n", ms.TexCoord[i*2], ms.TexCoord[i*2+1])
		}
	}
	hasNormals := len(ms.Normal) >= nv*3
	if hasNormals {
		for i := range nv {
			fmt.Fprintf(bw, "vn %g %g %g\n", ms.Normal[i*3], ms.Normal[i*3+1], ms.Normal[i*3+2])
		}
	}
	for fi := 0; fi < ms.NumIndex(); fi += 3 {
		a, b, c := ms.Index[fi]+1, ms.Index[fi+1]+1, ms.Index[fi+2]+1
		switch {
		case hasTexcoords && hasNormals:
			fmt.Fprintf(bw, "f %d/%d/%d %d/%d/%d %d/%d/%d\n", a, a, a, b, b, b, c, c, c)
		case hasNormals:
			fmt.Fprintf(bw, "f %d//%d %d//%d %d//%d\n", a, a, b, b, c, c)
		case hasTexcoords:
			fmt.Fprintf(bw, "f %d/%d %d/%d %d/%d\n", a, a, b, b, c, c)
		default:
			fmt.Fprintf(bw, "f %d %d %d\n", a, b, c)
		}
	}
	return bw.Flush()
}

// SaveOBJ writes the mesh to the OBJ file at the given path.
func SaveOBJ(path string, ms *mesh.Mesh) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("obj: %w", err)
	}
	if err := WriteOBJ(f, ms); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
