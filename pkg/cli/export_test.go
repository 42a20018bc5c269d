package cli

var LoadEnvFiles = loadEnvFiles
