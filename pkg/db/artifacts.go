package db

import (
	"fmt"
	"os"
	"path"

	"github.com/yumyai/genepredict/internal/util"
)

// Serialized classifier files the external predictor loads.
var REQUIRED_ARTIFACTS = []string{
	"stack_meta_clf.pkl",
	"stack_label_encoder.pkl",
	"lgb_models_list.pkl",
	"xgb_models_list.pkl",
}

// Folder which hosts the model artifacts. Presence is checked on every call,
// files may appear or disappear while the server runs (deployments).
type ArtifactStore struct {
	Dir string
}

func NewArtifactStore(dir string) *ArtifactStore {
	return &ArtifactStore{Dir: dir}
}

// RequiredFiles returns a copy of the artifact names.
func (store *ArtifactStore) RequiredFiles() []string {
	files := make([]string, len(REQUIRED_ARTIFACTS))
	copy(files, REQUIRED_ARTIFACTS)
	return files
}

// Available reports whether every required artifact exists.
func (store *ArtifactStore) Available() bool {
	for _, file := range REQUIRED_ARTIFACTS {
		if !util.FileExists(path.Join(store.Dir, file)) {
			return false
		}
	}
	return true
}

// Missing lists the absent artifacts, in declaration order.
func (store *ArtifactStore) Missing() []string {
	var missing []string
	for _, file := range REQUIRED_ARTIFACTS {
		if !util.FileExists(path.Join(store.Dir, file)) {
			missing = append(missing, file)
		}
	}
	return missing
}

// Check is the error form of Available, used for startup diagnostics.
func (store *ArtifactStore) Check() error {
	missing := store.Missing()
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s missing %v", os.ErrNotExist, store.Dir, missing)
}
