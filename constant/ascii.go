package constant

// AsciiArtLogo is the application's banner shown by the version command.
const AsciiArtLogo = `            _     _
  __ _ _ __ (_) __| | _____  __
 / _' | '_ \| |/ _' |/ _ \ \/ /
| (_| | | | | | (_| |  __/>  <
 \__,_|_| |_|_|\__,_|\___/_/\_\
`
