package constants

import "fmt"

// MaxLabelFileSize is the default upper bound for a single label PDF (50 MiB).
const MaxLabelFileSize int64 = 50 * 1024 * 1024

// PDFMimeType is the content type a label file must sniff as.
const PDFMimeType = "application/pdf"

// PDFSignature holds the leading bytes of every well-formed PDF file.
var PDFSignature = []byte("%PDF")

// LabelsDirPerm is the mode used when creating the labels root directory.
const LabelsDirPerm = 0o755

// LabelFilePerm is the mode used for stored label files.
const LabelFilePerm = 0o644

const (
	// MergedFilenamePrefix prefixes the filename of a bulk-download artifact.
	MergedFilenamePrefix = "shipping_labels_merged_"
	// PrintFilenamePrefix prefixes the filename of a bulk-print artifact.
	PrintFilenamePrefix = "shipping_labels_"

	// MergedDateFormat is the date stamp used for bulk downloads.
	MergedDateFormat = "2006-01-02"
	// PrintTimestampFormat is the date+time stamp used for bulk prints.
	PrintTimestampFormat = "2006-01-02_150405"
)

// MaxTrackingNumberLen bounds the tracking_number column.
const MaxTrackingNumberLen = 255

// MaxModuleNameLen bounds the module_name column.
const MaxModuleNameLen = 64

// MaxStoredFilenameLen bounds the stored_filename column.
const MaxStoredFilenameLen = 255

// StoredFilename derives the on-disk basename for a label record. Filenames
// always come from the record id, never from caller input.
func StoredFilename(labelID int) string {
	return fmt.Sprintf("label_%d.pdf", labelID)
}
