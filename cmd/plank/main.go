// Command plank flattens a configuration tree into a single annotated
// bundle file and unpacks such bundles back into a tree.
package main

import (
	"fmt"

	"github.com/spf13/afero"

	"github.com/fernwood-labs/plank-cli/internal/adapters/driven/localfs"
	"github.com/fernwood-labs/plank-cli/internal/adapters/driven/manifest"
	"github.com/fernwood-labs/plank-cli/internal/adapters/driving/cli"
	"github.com/fernwood-labs/plank-cli/internal/core/services"
)

// version is stamped by the release build via -ldflags.
var version = "dev"

func main() {
	cli.SetVersion(version)

	fs := afero.NewOsFs()
	collector := localfs.NewCollector(fs)
	materializer := localfs.NewMaterializer(fs)
	bundles := localfs.NewBundleStore(fs)
	manifests := manifest.NewStore(fs)

	generator := fmt.Sprintf("plank %s", cli.Version())

	cli.SetServices(cli.Services{
		Flatten:   services.NewFlattenService(collector, bundles, manifests, generator),
		Unflatten: services.NewUnflattenService(bundles, materializer),
		Inspect:   services.NewInspectService(bundles),
		Manifest:  services.NewManifestService(manifests),
		Watcher:   localfs.NewWatcher(),
	})

	cli.Execute()
}
