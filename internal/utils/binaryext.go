package utils

import "strings"

// binaryExtensions lists file suffixes assumed to denote non-text content.
// Files matching any suffix are marked skipped without reading their bytes.
// The table is an extension heuristic, not content sniffing; false positives
// and false negatives are accepted.
var binaryExtensions = []string{
	// Compiled executables and libraries
	".exe", ".dll", ".so", ".a", ".lib", ".dylib", ".o", ".obj",
	// Compressed archives
	".zip", ".tar", ".tar.gz", ".tgz", ".rar", ".7z", ".bz2", ".gz",
	".xz", ".z", ".lz", ".lzma", ".lzo", ".rz", ".sz", ".dz",
	// Application-specific documents
	".pdf", ".doc", ".docx", ".xls", ".xlsx", ".ppt", ".pptx",
	".odt", ".ods", ".odp",
	// Media
	".png", ".jpg", ".jpeg", ".gif", ".mp3", ".mp4", ".wav", ".flac",
	".ogg", ".avi", ".mkv", ".mov", ".webm", ".wmv", ".m4a", ".aac",
	// Virtual machine and container images
	".iso", ".vmdk", ".qcow2", ".vdi", ".vhd", ".vhdx", ".ova", ".ovf",
	// Database files
	".db", ".sqlite", ".mdb", ".accdb", ".frm", ".ibd", ".dbf",
	// Java artifacts
	".jar", ".class", ".war", ".ear", ".jpi",
	// Python bytecode and packages
	".pyc", ".pyo", ".pyd", ".egg", ".whl",
	// Packages and images
	".deb", ".rpm", ".apk", ".msi", ".dmg", ".pkg", ".bin", ".dat",
	".data", ".dump", ".img", ".toast", ".vcd", ".crx", ".xpi",
	// Lock files
	".lock", ".lockb", "package-lock.json", "pnpm-lock.yaml",
	// Fonts and icons
	".svg", ".eot", ".otf", ".ttf", ".woff", ".woff2", ".ico", ".icns", ".cur",
	// Installer fragments
	".cab", ".dmp", ".msp", ".msm", ".msu",
	// Keys and certificates
	".keystore", ".jks", ".truststore", ".cer", ".crt", ".der", ".p7b",
	".p7c", ".p12", ".pfx", ".pem", ".csr", ".key", ".pub", ".sig",
	".pgp", ".gpg",
	// Platform packages
	".nupkg", ".snupkg", ".appx", ".msix", ".snap", ".flatpak", ".appimage",
	// Kernel and debug artifacts
	".ko", ".sys", ".elf", ".swf", ".fla", ".swc", ".rlib", ".pdb",
	".idb", ".dbg", ".sdf",
	// Transient build and editor leftovers
	".bak", ".tmp", ".temp", ".log", ".tlog", ".ilk",
	".bpl", ".dcu", ".dcp", ".dcpil", ".drc",
	".aps", ".res", ".rsrc", ".rc", ".resx",
	// Settings files carrying no prompt value
	".prefs", ".properties", ".ini", ".cfg", ".config", ".conf",
	// Platform metadata
	".DS_Store", ".localized", ".svn", ".git", ".gitignore", ".gitkeep",
}

// HasBinaryExtension reports whether the file name carries a suffix from the
// binary extension table.
func HasBinaryExtension(fileName string) bool {
	for _, extensionValue := range binaryExtensions {
		if strings.HasSuffix(fileName, extensionValue) {
			return true
		}
	}
	return false
}
