// Command fdir packs files into FDIR containers and unpacks them.
//
//	fdir -i <file|dir> -o <output-base>   pack into <output-base>.fdir
//	fdir -e <container> -o <dir>          unpack into <dir>
//	fdir -l <container>                   list records
//
// An output base that already ends in .fdir is used as the container name
// unchanged, so "-o backup.fdir" writes backup.fdir, not backup.fdir.fdir.
package main

import "os"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
