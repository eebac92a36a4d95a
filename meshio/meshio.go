// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package meshio reads and writes mesh files in the formats edit hosts
commonly feed us: Wavefront OBJ (read and write), binary STL (read),
and glTF 2.0 (read). Loaders return a [mesh.Mesh] with bounds computed
and the source path and format stamped in its metadata.
*/
package meshio

import (
	"fmt"
	"path/filepath"
	"strings"

	"cogentcore.org/meshedit/mesh"
)

// Open reads a mesh file, dispatching on the extension:
// .obj, .stl, .gltf, .glb.
func Open(path string) (*mesh.Mesh, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".obj":
		return OpenOBJ(path)
	case ".stl":
		return OpenSTL(path)
	case ".gltf", ".glb":
		return OpenGLTF(path)
	}
	return nil, fmt.Errorf("meshio: unsupported mesh format %q", filepath.Ext(path))
}

// fileName returns the base name of the path without its extension.
func fileName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

// stampMeta records the source path and format on the mesh.
func stampMeta(ms *mesh.Mesh, path, format string) {
	ms.Meta.Set("Path", path)
	ms.Meta.Set("Format", format)
}
