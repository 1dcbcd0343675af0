// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// TerrainVertexShader transforms terrain vertices and forwards the
// normal and world position to the fragment stage.
//
//go:embed terrain.vert
var TerrainVertexShader string

// NormalsFragmentShader maps the vertex normal to RGB.
//
//go:embed normals.frag
var NormalsFragmentShader string

// PhongFragmentShader applies ambient/diffuse/specular lighting.
//
//go:embed phong.frag
var PhongFragmentShader string
