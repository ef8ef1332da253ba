package constants

import "os"

func GetIndexDir() string {
	path := os.Getenv("INDEX_PATH")
	if path != "" {
		return path
	}
	return "./out"
}

func GetDataHome() string {
	path := os.Getenv("BILLBOARD_PATH")
	if path != "" {
		return path
	}

	panic("BILLBOARD_PATH environment variable is not set!")
}

// Layout inside the data home, matching the published corpus tarballs.
const (
	AnnotationsDir     = "annotations"
	AnnotationFilename = "salami_chords.txt"
)

// The five lab reduction flavors shipped per track.
var LabFlavors = []string{"full", "majmin7", "majmin7inv", "majmin", "majmininv"}

const DefaultLabFlavor = "full"
