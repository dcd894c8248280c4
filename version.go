package xmlrpc

// Version is the library and command version
const Version = "0.3.0"
