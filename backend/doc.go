// Package backend defines the external collaborator boundary this core
// renders through: a thin interface over GPU buffer/texture residency
// and frame submission, never the driver itself.
//
// # Backend registration
//
// Backends register a Factory via init(), mirroring the teacher's own
// registration pattern:
//
//	import _ "github.com/gogpu/corerender/backend/wgpu"
//
// # Backend selection
//
//	b, err := backend.Default()
//	if err != nil {
//		log.Fatal(err)
//	}
//
// # Available backends
//
//   - "wgpu": GPU residency via github.com/gogpu/wgpu, github.com/gogpu/gpucontext
//     and github.com/gogpu/naga.
package backend
