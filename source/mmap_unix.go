/*
 * mmap_unix.go, part of mrsimtxt.
 *
 *
 * Copyright 2024 Raul Mera <rauldotmeraatusachdotcl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

//go:build unix

package source

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

//mapFile maps the file at name into memory, read-only.
func mapFile(name string) (*Blob, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close() //the mapping outlives the descriptor.
	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}
	size := fi.Size()
	if size == 0 {
		return &Blob{}, nil
	}
	if !fi.Mode().IsRegular() || int64(int(size)) != size {
		return nil, fmt.Errorf("can't map %s", name)
	}
	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("mapping %s: %w", name, err)
	}
	//the whole file is read front to back, then split among workers.
	_ = unix.Madvise(data, unix.MADV_SEQUENTIAL)
	return &Blob{data: data, release: func() error { return unix.Munmap(data) }}, nil
}
