/*
 * doc.go, part of torsion.
 *
 * Copyright 2023 The torsion developers.
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
 */

//Package torsion builds labeled multi-conformer ensembles for dihedral
//(torsion) energy scanning of small molecules. Given a molecule tagged
//with the four atom indexes of a dihedral of interest, the package
//generates a conformer ensemble constrained around the rotatable bonds
//near that dihedral, re-deriving the dihedral indexes if generation
//renumbers atoms, and drives the dihedral through a uniform angle grid,
//either relaxing the remaining coordinates at each point or rotating
//rigidly. Conformer sampling and relaxation are performed by pluggable
//engines satisfying the Sampler and Scanner interfaces; the ff
//subpackage provides a deterministic reference implementation.
//
//The package performs no I/O. Molecules arrive already parsed, with
//their dihedral tag filled by an upstream fragmentation step, and the
//labeled ensembles returned here are consumed by downstream stages.
package torsion
