/*
 * doc.go, part of mrsimtxt.
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

//Package chemjson streams decoded trajectories as JSON, so programs
//written in other languages can read them through a pipe. A stream is a
//sequence of JSON values, one per line: one Info, then Info.Atoms Atom
//values, then one Frame value per exported frame. Errors found while
//streaming can be sent as an Error value, with IsError set.
package chemjson
