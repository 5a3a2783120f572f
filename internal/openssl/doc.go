// Package openssl recommends an OpenSSL certificate directory for
// post-install guidance.
//
// Relocated Python builds cannot rely on a compiled-in OPENSSLDIR, so
// the installer suggests environment variables (OPENSSLDIR,
// SSL_CERT_FILE, SSL_CERT_DIR) pointing at the system's certificate
// store. The recommendation is purely advisory: the ranker only reads
// the filesystem and asks the system openssl tool for its compiled-in
// directory, and every failure degrades to a "not found" message.
//
// # Ranking
//
// Candidates are the system default (when the openssl tool reports
// one) followed by a fixed list of per-distribution convention paths.
// Each existing candidate directory is scored:
//
//	+1  it is the system default
//	+4  it contains a cert.pem file
//	+2  it contains a certs/ subdirectory
//
// The highest score wins; ties are reported as ambiguous with the
// first-encountered candidate as canonical. Score thresholds map to
// the recommendations: >=6 sets both SSL_CERT_FILE and SSL_CERT_DIR,
// >=4 only SSL_CERT_FILE, >=2 only SSL_CERT_DIR.
package openssl
