package hcl

// settingsFile is the HCL schema of one settings file. Unknown attributes
// and blocks are rejected by the decoder.
type settingsFile struct {
	ExportPath *string   `hcl:"export_path,optional"`
	Log        *logBlock `hcl:"log,block"`
}

// logBlock is the `log { ... }` block.
type logBlock struct {
	Level  *string `hcl:"level,optional"`
	Format *string `hcl:"format,optional"`
}
